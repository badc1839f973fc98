package worker

import "time"

// DefaultJobTimeout bounds a single job when the pool is created without one
const DefaultJobTimeout = 10 * time.Second

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgWorkerQueueFull is logged when a job is dropped because the queue is full
const LogMsgWorkerQueueFull = "Worker queue full, job dropped"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
