// Package http implements the HTTP transport layer of the invoice dashboard.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as session authentication, request tracing, access logging,
// response compression and page caching are handled in this package before
// requests are delegated to the service layer. Pages answer JSON view models;
// form actions answer 303 See Other on success and the form state otherwise.
package http
