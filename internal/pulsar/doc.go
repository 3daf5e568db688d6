// Package pulsar models a rotation-powered pulsar with paired
// period/frequency accessors and a fixed-layout parameter report.
package pulsar
