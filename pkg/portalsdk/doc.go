// Package portalsdk is a typed Go client for the learning portal API. It is
// shared between the server (response types, handler payloads) and external
// consumers, including the end-to-end suite.
//
// Unauthenticated operations live on SDKClient. Login or Register returns a
// Session, which attaches the bearer token to subsequent requests.
package portalsdk
