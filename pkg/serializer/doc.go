// Package serializer writes structured data as JSON, YAML or a table.
//
// It backs "zmake graph", which dumps the resolved entities of a project:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close() // Important: close to release file handles
//	if err := w.Serialize(ctx, snapshot); err != nil {
//		return err
//	}
//
// The table format flattens nested structures into dotted keys, one row per
// leaf value:
//
//	FIELD                       VALUE
//	-----                       -----
//	Libraries.[0].Name          core
//	Libraries.[0].Objects.[0]   ...
package serializer
