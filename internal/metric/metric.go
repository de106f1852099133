package metric

// CPU - single CPU sample. Percentages are fractions, 0.25 means 25%.
type CPU struct {
	AppPercent float64
	SysPercent float64
	// Time - sample time in milliseconds since the Unix epoch
	Time int64
}

// Memory - single memory sample, values are in bytes
type Memory struct {
	AppRAMUsed   uint64
	TotalRAMUsed uint64
	// Time - sample time in milliseconds since the Unix epoch
	Time int64
}

// HTTP - completed inbound HTTP request
type HTTP struct {
	URL string
	// Duration - request duration in milliseconds
	Duration float64
	// Time - request time in milliseconds since the Unix epoch
	Time int64
}

// Latency - dispatch latency measurement
type Latency struct {
	// Duration - latency in milliseconds
	Duration float64
}
