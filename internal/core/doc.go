// Package core provides the conversion logic for registry CSV datasets.
//
// The package is independent of the CLI. It can be driven by cmd/domainreg,
// other tools, or tests without modification.
//
// # Architecture
//
//   - Dataset Definitions: Registered via the registry, each dataset has
//     field specs, default file names and a row mapper.
//   - Converter: Runs each registered dataset as an isolated pipeline.
//   - Normalizers: SplitList and ToOptional implement the cell rules.
//   - Documents: WriteDocument and ReadDocument handle the JSON output.
//
// # Dataset Registry
//
// Datasets are registered at init time using [Register]:
//
//	core.Register(DatasetDefinition{
//	    Info: DatasetInfo{Key: "registries", Input: "registries.csv", Output: "registries.json"},
//	    FieldSpecs: []FieldSpec{
//	        {Name: "tld", Kind: FieldKey},
//	        {Name: "name", Kind: FieldList},
//	    },
//	    BuildRecord: buildRegistry,
//	})
//
// # Pipeline
//
// For each dataset, in [DatasetInfo.Order]:
//
//  1. The input is opened and wrapped with BOM skipping and a UTF-8 check;
//     any invalid byte fails the dataset (FILE002)
//  2. The header row is indexed case-insensitively
//  3. Every data row goes through BuildRecord, which normalizes cells with
//     [NormalizeRow]; rows with a blank key are dropped silently and rows
//     with a bad key are dropped with a warning
//  4. The records are written as an indented JSON array, replacing the output
//
// A failure at any step aborts that dataset only; the next one still runs.
//
// # Error Handling
//
// Failures are classified with sentinel errors and mapped to codes using
// [MapError] (FILE001-FILE004, ROW001, RUN001, ERR000).
package core
