// Package io exports pod graphs as node-link JSON.
//
// # JSON Format
//
//	{
//	  "policy": "pyre-of-heroes",
//	  "nodes": [
//	    {"id": 0, "name": "Goblin Matron", "cmc": 3, "types": ["Goblin"]},
//	    {"id": 1, "name": "Llanowar Elves", "cmc": 1, "types": ["Elf", "Druid"], "isolated": true},
//	    {"id": 2, "name": "Goblin Chieftain", "cmc": 4, "types": ["Goblin"]}
//	  ],
//	  "edges": [
//	    {"from": 0, "to": 2, "label": "Goblin"}
//	  ]
//	}
//
// Node IDs are insertion indices and match the node names in the DOT output.
// Labels are omitted for policies whose edges carry no data.
//
// The export is one-way: graphs are rebuilt from decklists, not loaded back.
package io
