package vecmath

import "github.com/go-gl/mathgl/mgl64"

// Matrix3D is a 3x3 float64 matrix. Storage is column-major as in mathgl;
// the constructors below take row-major input.
type Matrix3D mgl64.Mat3

// Identity returns the 3x3 identity matrix.
func Identity() Matrix3D {
	return Matrix3D(mgl64.Ident3())
}

// Mat creates a matrix from nine values given in row-major order.
func Mat(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix3D {
	return MatFromRows(Vec(m00, m01, m02), Vec(m10, m11, m12), Vec(m20, m21, m22))
}

// MatFromRows creates a matrix from three row vectors.
func MatFromRows(r0, r1, r2 Vector3D) Matrix3D {
	return Matrix3D(mgl64.Mat3FromRows(r0.gl(), r1.gl(), r2.gl()))
}

func (m Matrix3D) gl() mgl64.Mat3 {
	return mgl64.Mat3(m)
}

// At returns the element at the given row and column.
func (m Matrix3D) At(row, col int) float64 {
	return m.gl().At(row, col)
}

// Row returns row i as a vector.
func (m Matrix3D) Row(i int) Vector3D {
	return Vector3D(m.gl().Row(i))
}

// Col returns column j as a vector.
func (m Matrix3D) Col(j int) Vector3D {
	return Vector3D(m.gl().Col(j))
}

// Add returns m + o.
func (m Matrix3D) Add(o Matrix3D) Matrix3D {
	return Matrix3D(m.gl().Add(o.gl()))
}

// Sub returns m - o.
func (m Matrix3D) Sub(o Matrix3D) Matrix3D {
	return Matrix3D(m.gl().Sub(o.gl()))
}

// Scale multiplies every element by s.
func (m Matrix3D) Scale(s float64) Matrix3D {
	return Matrix3D(m.gl().Mul(s))
}

// Mul returns the matrix product m * o.
func (m Matrix3D) Mul(o Matrix3D) Matrix3D {
	return Matrix3D(m.gl().Mul3(o.gl()))
}

// MulVec returns m * v treating v as a column vector.
func (m Matrix3D) MulVec(v Vector3D) Vector3D {
	return Vector3D(m.gl().Mul3x1(v.gl()))
}

// Transpose returns the transposed matrix.
func (m Matrix3D) Transpose() Matrix3D {
	return Matrix3D(m.gl().Transpose())
}

// Det returns the determinant.
func (m Matrix3D) Det() float64 {
	return m.gl().Det()
}

// ApproxEqual reports whether m and o differ by at most eps per element.
func (m Matrix3D) ApproxEqual(o Matrix3D, eps float64) bool {
	return m.gl().ApproxEqualThreshold(o.gl(), eps)
}
