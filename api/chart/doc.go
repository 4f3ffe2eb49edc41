// Package chart turns normalized tables into go-echarts chart objects.
//
// The adapters are stateless pass-throughs: they validate that the named
// columns exist, project the table onto the chart's data model, and leave
// rendering entirely to the caller.
package chart
