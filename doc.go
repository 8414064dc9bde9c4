// Package embeval evaluates word embeddings.
//
// This package reads embeddings in the word2vec text and binary
// formats. It evaluates embeddings on word analogy files (capital,
// state and family analogies) and supports nearest neighbor, similarity
// and analogy queries.
//
// Matrix-vector products go through gonum's BLAS interface. Building
// with the netlib tag binds gonum to a C BLAS library, which can give
// nice performance improvements on large vocabularies. The binding can
// be configured using CGO flags. For instance, to link against OpenBLAS
// on Linux:
//
//     CGO_LDFLAGS="-L/path/to/OpenBLAS -lopenblas" go install -tags netlib ./...
//
// or Accelerate on OS X:
//
//     CGO_LDFLAGS="-framework Accelerate" go install -tags netlib ./...
package embeval
