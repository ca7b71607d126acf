package order

import "github.com/rs/zerolog/log"

// Reporter is notified when a line leaves the order because its quantity
// reached zero or below.
type Reporter interface {
	ReportRemoved(orderID string, line Line)
}

// logReporter is the fallback used until SetReporter is called.
type logReporter struct{}

func (logReporter) ReportRemoved(orderID string, line Line) {
	log.Info().
		Str("order", orderID).
		Str("product", line.Product.Name).
		Msg("line removed")
}
