// Package ehr reads processed EHR exports.
//
// The input is a UTF-8 JSON array of objects, one object per patient. Values
// are decoded without interpretation (numbers keep their literal text) so that
// the report reproduces them exactly.
package ehr
