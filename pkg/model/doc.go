// Package model defines the figure input record and the structural fragment
// renderers consume. A fragment is a small typed tree: the outer figure
// grouping, the image node and the caption node, in that order.
package model
