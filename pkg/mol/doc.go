// Package mol reads and writes compound files. These are a very
// cut down relative of the old pdb format. A file is a list of records
// like
//
//	COMPND TEST
//	ATOM 1 N 0.1 0.2 0.3
//	ATOM 2 N 0.2 0.1 0.0
//	END
//
// The name is one word. The number after ATOM is ignored. Then comes
// the element and three coordinates. We keep the coordinates as the
// strings from the file. If you want numbers, ask for them with
// Atom.Xyz or Molecule.Coords.
//
// Usage. Wrap whatever you are reading from with NewReader, then call
// ReadMolecule until it returns io.EOF, or call ReadAll to get the lot
// in a CompoundDict. If you have a file name, ReadFile does the opening
// and will cope with gzipped files.
//
// Decisions about broken input:
//   - Anything that does not fit the format is a *MalformedRecordError,
//     which knows the line number and the start of the line.
//   - A file that stops before END is malformed. We do not treat end
//     of file as an implicit END.
//   - An ATOM line needs exactly three coordinates.
//   - Blank lines are jumped over anywhere.
//   - If a name appears twice, the later record wins, unless
//     Options.RejectDup is set, when ErrDuplicateName comes back.
package mol
