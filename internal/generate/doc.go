// Package generate implements the fetch side of the image pipeline: an HTTP
// client for the text-to-image endpoint and a single-worker service that turns
// every submitted job into exactly one Result in the handoff slot.
package generate
