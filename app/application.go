// Package app defines the Application aggregate the path-selection core
// receives from its caller: a set of applications, each carrying a set
// of traffic classes with candidate end-to-end paths. The core never
// interprets an Application beyond its traffic classes.
package app

import "github.com/katalvlaran/pathsel/pptc"

// Application is a named bundle of traffic classes sharing a deployment
// unit. Selectors operate over the union of all applications' traffic
// classes via pptc.FromTrafficClasses.
type Application struct {
	Name          string
	TrafficClasses []pptc.TrafficClass
}

// AllTrafficClasses flattens a set of applications into one traffic-class
// slice, preserving application order and each application's internal
// traffic-class order.
func AllTrafficClasses(apps []Application) []pptc.TrafficClass {
	var out []pptc.TrafficClass
	for _, a := range apps {
		out = append(out, a.TrafficClasses...)
	}

	return out
}
