// Package header provides the common header of zmake's structured output.
//
// Every document zmake serializes, such as the graph dump, starts with a
// Kubernetes-style header so consumers can check what they are reading:
//
//	kind: ProjectGraph
//	apiVersion: zmake/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//	  generator: ninja
//
// Create one with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindProjectGraph),
//	    header.WithAPIVersion(header.APIVersion),
//	    header.WithMetadata("generator", "ninja"),
//	)
//
// or with Init, which also stamps the time and tool version.
//
// Timestamps use RFC3339 in UTC. Build scripts never carry a header of this
// kind, so their output stays byte-identical across runs.
package header
