package sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sweep_scanners_total",
		Help: "Scanner runs by result.",
	}, []string{"result"})

	hitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sweep_hits_total",
		Help: "Scanner hits by dedup result.",
	}, []string{"result"})

	mailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sweep_mails_total",
		Help: "Dispatched notification mails by result.",
	}, []string{"result"})
)
