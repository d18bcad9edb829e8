package interfaces

import "time"

// IReportObserver receives the outcome of every KPI report computation.
//
//go:generate mockgen -source=report_observer_interface.go -destination=mocks/report_observer_interface_mock.go -package=mock_interfaces

type IReportObserver interface {
	ObserveReport(period string, elapsed time.Duration, err error)
}
