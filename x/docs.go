/*
Package x contains the standard extensions of the vault application.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together by the app package. The Authenticator
declared here is the only thing an extension needs to know about who
signed a transaction, so the verification mechanism can be replaced
without touching the extensions.
*/
package x
