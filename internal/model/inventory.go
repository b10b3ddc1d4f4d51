package model

// FileScan is the outcome of scanning one input.
type FileScan struct {
	File       File
	CodePoints CodePointSet
	Err        error // non-nil when the file was skipped
}

// Skipped reports whether the file contributed nothing because of an error.
func (f FileScan) Skipped() bool {
	return f.Err != nil
}

// Inventory is the finalized result of a run.
type Inventory struct {
	CodePoints CodePointSet
	Scans      []FileScan // auxiliary first, then candidates ordered by path
}

// Scanned returns the inputs that were read successfully.
func (inv Inventory) Scanned() []FileScan {
	return inv.filter(false)
}

// Skipped returns the candidate files that could not be read or decoded.
func (inv Inventory) Skipped() []FileScan {
	return inv.filter(true)
}

func (inv Inventory) filter(skipped bool) []FileScan {
	var out []FileScan

	for _, scan := range inv.Scans {
		if scan.Skipped() == skipped {
			out = append(out, scan)
		}
	}

	return out
}
