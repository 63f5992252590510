package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal HTTP 请求计数，按方法/路由/状态码分维度
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests processed.",
	},
	[]string{"method", "path", "status"},
)

// RecognitionsTotal 识别事件计数，outcome 取值 recognized / not_recognized / no_users
var RecognitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "face_recognitions_total",
		Help: "Total number of recognition attempts by outcome.",
	},
	[]string{"outcome"},
)
