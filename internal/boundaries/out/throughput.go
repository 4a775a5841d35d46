package out

import "context"

// ThroughputMeter measures download throughput over the current default path.
type ThroughputMeter interface {
	// Download returns the measured throughput in Mbps.
	Download(ctx context.Context) (float64, error)
}
