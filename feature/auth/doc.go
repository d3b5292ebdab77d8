// Package auth implements the admin login check.
//
// POST /api/auth/login accepts {"email": "..."} and asks the configured
// auth.Oracle whether the address is an administrator. It answers 400 when no
// email is given, 403 when the oracle refuses and 200 otherwise.
package auth
