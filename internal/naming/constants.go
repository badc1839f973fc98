package naming

// SlugSeparator joins the words of a slug
const SlugSeparator = "-"

// MaxSlugLength matches the width of the slug column
const MaxSlugLength = 255
