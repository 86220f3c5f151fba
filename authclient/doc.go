// Package authclient is the HTTP implementation of the
// [stayauth.AuthService] boundary: the remote identity API of the booking
// platform, consumed as an opaque request/response surface.
//
// The client owns transport concerns the session core must not know about:
// endpoint paths, the bearer credential header, request correlation IDs,
// and timeouts. Server-side failure messages are carried back verbatim in
// [*APIError] so the UI can render exactly what the service said.
package authclient
