// Package genai is the boundary to the generative image service.
//
// A Service turns a prompt into a raster image or SVG markup, improves
// prompts and describes uploaded pictures. Client implements Service
// with the google.golang.org/genai SDK. Failures are classified once, here, into
// the kinds of Error a user interface reacts to: a bad credential, an
// exhausted quota, or anything else.
//
// Pipeline runs the whole generation step (prompt building, the service
// call and border framing) and cancels a request that is superseded by a
// newer one. CredentialStore persists the API key between runs.
package genai
