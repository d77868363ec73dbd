package glm

// Mat3 is a column major 3x3 matrix.
type Mat3[T numeric] [9]T

func IdentityMat3[T numeric]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func TranslationMat3[T numeric](x, y T) Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

func RotationMat3[T numeric](angle Rad) Mat3[T] {
	s, c := fastSincos(angle)

	return Mat3[T]{
		T(c), T(s), 0,
		-T(s), T(c), 0,
		0, 0, 1,
	}
}

func ScaleMat3[T numeric](x, y T) Mat3[T] {
	return Mat3[T]{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

func (lhs Mat3[T]) Rotate(angle Rad) Mat3[T] {
	return lhs.Mul(RotationMat3[T](angle))
}

func (lhs Mat3[T]) Scale(x, y T) Mat3[T] {
	return lhs.Mul(ScaleMat3(x, y))
}

func (lhs Mat3[T]) Translate(x, y T) Mat3[T] {
	return lhs.Mul(TranslationMat3(x, y))
}

func (lhs Mat3[T]) Mul(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6]*rhs[2],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7]*rhs[2],
		lhs[2]*rhs[0] + lhs[5]*rhs[1] + lhs[8]*rhs[2],
		lhs[0]*rhs[3] + lhs[3]*rhs[4] + lhs[6]*rhs[5],
		lhs[1]*rhs[3] + lhs[4]*rhs[4] + lhs[7]*rhs[5],
		lhs[2]*rhs[3] + lhs[5]*rhs[4] + lhs[8]*rhs[5],
		lhs[0]*rhs[6] + lhs[3]*rhs[7] + lhs[6]*rhs[8],
		lhs[1]*rhs[6] + lhs[4]*rhs[7] + lhs[7]*rhs[8],
		lhs[2]*rhs[6] + lhs[5]*rhs[7] + lhs[8]*rhs[8],
	}
}

func (lhs Mat3[T]) Transform(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6]*rhs[2],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7]*rhs[2],
		lhs[2]*rhs[0] + lhs[5]*rhs[1] + lhs[8]*rhs[2],
	}
}

func (lhs Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{
		lhs[i+0],
		lhs[i+3],
		lhs[i+6],
	}
}

// ToWGPU pads the three columns to vec4 as required by the uniform
// layout of a mat3x3<f32>.
func (lhs Mat3[T]) ToWGPU() [12]float32 {
	return [12]float32{
		float32(lhs[0]), float32(lhs[1]), float32(lhs[2]), 0,
		float32(lhs[3]), float32(lhs[4]), float32(lhs[5]), 0,
		float32(lhs[6]), float32(lhs[7]), float32(lhs[8]), 0,
	}
}
