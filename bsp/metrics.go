// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	passLabel   = "pass"
	reasonLabel = "reason"

	passOpaque  = "opaque"
	passBlend   = "blend"
	cullPVS     = "pvs"
	cullFrustum = "frustum"
)

var (
	facesEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "q3world_faces_emitted_total",
		Help: "The number of draw commands emitted by the visibility walk.",
	}, []string{
		passLabel,
	})

	leavesCulled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "q3world_leaves_culled_total",
		Help: "The number of leaves rejected by the visibility walk.",
	}, []string{
		reasonLabel,
	})

	nodesCulled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "q3world_nodes_culled_total",
		Help: "The number of nodes whose bounds are outside of the frustum.",
	})

	brushCorrections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "q3world_brush_corrections_total",
		Help: "The number of times a brush pushed a traced sphere out.",
	})

	patchesTesselated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "q3world_patches_tesselated_total",
		Help: "The number of 3x3 patches turned into triangles.",
	})

	// The walk runs per node and leaf, resolve the label sets once.
	facesEmittedByPass = map[string]prometheus.Counter{
		passOpaque: facesEmitted.WithLabelValues(passOpaque),
		passBlend:  facesEmitted.WithLabelValues(passBlend),
	}
	leavesCulledByReason = map[string]prometheus.Counter{
		cullPVS:     leavesCulled.WithLabelValues(cullPVS),
		cullFrustum: leavesCulled.WithLabelValues(cullFrustum),
	}
)

func instrumentFacesEmitted(pass string, n int) {
	facesEmittedByPass[pass].Add(float64(n))
}

func instrumentNodeCulled() {
	nodesCulled.Inc()
}

func instrumentLeafCulled(reason string) {
	leavesCulledByReason[reason].Inc()
}

func instrumentBrushCorrection() {
	brushCorrections.Inc()
}

func instrumentPatchTesselated() {
	patchesTesselated.Inc()
}
