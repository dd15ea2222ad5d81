// 19 Oct 2026

/*
Molread reads compound files and says what is in them.

Usage:
	molread [options] file [file ...]

For every compound, it logs the name, number of atoms, the centre of
the atoms and the largest distance between two atoms. Files may be
gzipped. All the compounds from all the files go into one
dictionary, so a name seen in a later file replaces the earlier one.

Flags:
	-d
		a compound name seen twice is an error, rather than the later
		one replacing the earlier
	-w fname
		write all the compounds to fname, sorted by name. Use - for
		standard output.
	-v
		verbose, log every record as it is read

Logging goes to standard error in logfmt.
*/
package main
