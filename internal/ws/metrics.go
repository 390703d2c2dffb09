package ws

import "github.com/prometheus/client_golang/prometheus"

var (
	connectedClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "authdeck_ws_clients",
		Help: "Connected appearance WebSocket clients.",
	})
	droppedMessages = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "authdeck_ws_dropped_messages_total",
		Help: "Messages dropped because a client's send buffer was full.",
	})
)

func init() {
	prometheus.MustRegister(connectedClients, droppedMessages)
}
