// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability for live ring buffers: a Prometheus collector and a
// debug probe registry.
package control
