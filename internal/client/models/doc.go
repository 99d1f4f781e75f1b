// Package models defines the wire types exchanged with the job-matching
// backend. Request types carry validate tags checked by the validation
// package before anything is sent.
package models
