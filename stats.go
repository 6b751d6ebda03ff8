package fhash

// Stats describes how keys are spread over a table's buckets
type Stats struct {
	Buckets      int     // addressed buckets
	Entries      int     // stored keys, or set flags
	Occupied     int     // buckets holding at least one key
	LongestChain int     // largest bucket
	LoadFactor   float64 // Entries / Buckets
}
