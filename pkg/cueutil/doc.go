// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Bundle layout profiles and the optional launcher config file are both CUE
// documents checked against an embedded schema. The flow is always:
//
//  1. Compile the embedded schema
//  2. Compile the document and unify it with a schema definition
//  3. Validate and decode to a Go value
//
// # Usage
//
//	//go:embed layouts_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Catalog](
//	    schemaBytes,
//	    layoutBytes,
//	    "#Catalog",
//	    cueutil.WithFilename("layouts.cue"),
//	)
//	if err != nil {
//	    return nil, err // error carries the CUE path of the bad field
//	}
package cueutil
