// Package web hosts the browser-facing ARVANA storefront.
//
// It owns the process-level wiring: visitor sessions carried by a signed
// cookie, the event bus feeding admin activity, the contact relay and the
// module composition that serves every page.
package web
