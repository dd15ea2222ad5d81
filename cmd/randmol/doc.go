// 31 July 2020

/*
Randmol makes random compound files for testing the code.
Usage:
	randmol [options] fname nmol natom
will generate nmol compounds with natom atoms each and write them to
fname. If fname is -, write to standard output.

Flags:
	-e
		provoke errors. The last compound has no END.
	-p prefix
		compounds are called prefix1, prefix2, ... (default MOL)
	-r
		random number seed

We are most interested in benchmarking and parsing, so the content is
not so important.
*/
package main
