// Package status tracks background job progress and conversion outcome counts.
//
// JobStatus is a mutex-guarded completion counter driven by RunJobs and observed by
// WaitFor, which polls at a fixed interval until a threshold is reached. Registry
// tallies converter results by error kind for reporting.
package status
