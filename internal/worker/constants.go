package worker

// Pool sizing defaults. Background load is light (periodic regen plus
// persistence writes), so a small pool suffices.
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 64
)

// Log message constants
const (
	LogMsgWorkerJobFailed = "worker job failed"
)
