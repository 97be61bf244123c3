package constants

const (
	MAX_PAGE_SIZE        = 100
	DEFAULT_PAGE_SIZE    = 20
	DEFAULT_OFFSET       = uint64(0)
	DEFAULT_METRICS_DAYS = 30
	MAX_METRICS_POINTS   = 1000
	MAX_EVIDENCE_LENGTH  = 10000
)
