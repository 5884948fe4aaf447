// Package handlers holds the HTTP handlers of the portfolio API.
//
// Contact serves POST /api/contact. It decodes the JSON body, delegates to
// contact.Service and maps the result to one of five fixed replies:
//
//	400 {"error":"Missing required fields"}
//	400 {"error":"Invalid email format"}
//	500 {"error":"Failed to send email"}
//	500 {"error":"Internal server error"}
//	200 {"success":true,"message":"Email sent successfully","emailId":"..."}
//
// Errors are returned as folio.HTTPError values and rendered by
// JSONErrorHandler, which must be installed with folio.WithErrorHandler.
package handlers
