// Package metrics exposes prometheus counters for registrations and push
// delivery outcomes, plus the HTTP handler that exports them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	usersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "push_notifications_users_registered_total",
			Help: "Total users registered",
		},
	)
	groupsRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "push_notifications_groups_registered_total",
			Help: "Total groups registered",
		},
	)
	pushesDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "push_notifications_pushes_delivered_total",
			Help: "Total notifications delivered to the push service",
		},
	)
	pushesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "push_notifications_pushes_failed_total",
			Help: "Total per-recipient delivery failures",
		},
	)
)

func init() {
	prometheus.MustRegister(usersRegistered, groupsRegistered, pushesDelivered, pushesFailed)
}

func IncUserRegistered()  { usersRegistered.Inc() }
func IncGroupRegistered() { groupsRegistered.Inc() }
func IncPushDelivered()   { pushesDelivered.Inc() }
func IncPushFailed()      { pushesFailed.Inc() }

// Handler returns the HTTP handler serving the prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
