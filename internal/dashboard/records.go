package dashboard

// Numbers are rendered as JSON strings, which is what the dashboard UI parses.

// CPULine - single CPU sample, percentages are fractions
type CPULine struct {
	Time    int64   `json:"time,string"`
	Process float64 `json:"process,string"`
	System  float64 `json:"system,string"`
}

func (l CPULine) timestamp() int64 { return l.Time }

// MemoryLine - single memory sample in bytes
type MemoryLine struct {
	Time         int64  `json:"time,string"`
	Physical     uint64 `json:"physical,string"`
	PhysicalUsed uint64 `json:"physical_used,string"`
}

func (l MemoryLine) timestamp() int64 { return l.Time }

// HTTPLine - requests since the previous read
type HTTPLine struct {
	// Time of the latest request
	Time int64  `json:"time,string"`
	URL  string `json:"url"`
	// Longest duration (ms), URL is the one it was served for
	Longest float64 `json:"longest,string"`
	Average float64 `json:"average,string"`
	Total   int     `json:"total,string"`
}

// URLLine - average response time of a single URL since start
type URLLine struct {
	URL                 string  `json:"url"`
	AverageResponseTime float64 `json:"averageResponseTime"`
}

// CPUAverage - mean CPU usage since start
type CPUAverage struct {
	Time    int64   `json:"time,string"`
	Process float64 `json:"process,string"`
	System  float64 `json:"system,string"`
}

// EnvRow - single environment parameter
type EnvRow struct {
	Parameter string `json:"Parameter"`
	Value     string `json:"Value"`
}
