// Package manifest assembles and encodes PXM manifests: the JSON documents
// that tell the rendering pipeline which imagery to read and how to publish it.
//
// # Manifest Format
//
//	{
//	    "info": {
//	        "account": "user",
//	        "color": {
//	            ".": "gamma 1.2"
//	        },
//	        "date": "2024",
//	        "license": "CC0",
//	        "notes": "",
//	        "product": "ortho",
//	        "tilesets": [
//	            "user.map"
//	        ]
//	    },
//	    "sources": [
//	        "s3://bucket/one.tif"
//	    ],
//	    "version": "0.5.0"
//	}
//
// The optional info keys (bidx, color, crs, ndv) are omitted when not set.
// Keys are always sorted and indentation is fixed, so identical inputs give
// byte-identical output.
//
// # Usage
//
//	m := manifest.Build(manifest.Fields{
//	    Sources:  sources,
//	    Tilesets: []string{"user.map"},
//	    Account:  "user",
//	    License:  "CC0",
//	    Product:  "ortho",
//	    Date:     "2024",
//	})
//	data, err := manifest.Marshal(m)
package manifest
