package models

// SystemMetrics is a lightweight aggregate snapshot served next to the
// Prometheus endpoint.
type SystemMetrics struct {
	RequestCount       uint64  `json:"request_count"`
	AvgRequestMs       float64 `json:"avg_request_ms"`
	StoreOpCount       uint64  `json:"store_op_count"`
	AvgStoreOpMs       float64 `json:"avg_store_op_ms"`
	RealtimeClients    int     `json:"realtime_clients"`
	GoroutineCount     int     `json:"goroutine_count"`
	NotificationPushes uint64  `json:"notification_pushes"`
}
