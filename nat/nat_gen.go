// Code generated by "lenvec gen"; DO NOT EDIT.
//
// Index token and length marker families for ceiling 16.

package nat

// I0 is the token denoting position 0.
var I0 Idx0

// Idx0 is the index token type for position 0. It satisfies Len1
// through Len16.
type Idx0 struct{}

// Value reports the position Idx0 denotes.
func (Idx0) Value() int { return 0 }

func (Idx0) isBelow1()  {}
func (Idx0) isBelow2()  {}
func (Idx0) isBelow3()  {}
func (Idx0) isBelow4()  {}
func (Idx0) isBelow5()  {}
func (Idx0) isBelow6()  {}
func (Idx0) isBelow7()  {}
func (Idx0) isBelow8()  {}
func (Idx0) isBelow9()  {}
func (Idx0) isBelow10() {}
func (Idx0) isBelow11() {}
func (Idx0) isBelow12() {}
func (Idx0) isBelow13() {}
func (Idx0) isBelow14() {}
func (Idx0) isBelow15() {}
func (Idx0) isBelow16() {}

// I1 is the token denoting position 1.
var I1 Idx1

// Idx1 is the index token type for position 1. It satisfies Len2
// through Len16.
type Idx1 struct{}

// Value reports the position Idx1 denotes.
func (Idx1) Value() int { return 1 }

func (Idx1) isBelow2()  {}
func (Idx1) isBelow3()  {}
func (Idx1) isBelow4()  {}
func (Idx1) isBelow5()  {}
func (Idx1) isBelow6()  {}
func (Idx1) isBelow7()  {}
func (Idx1) isBelow8()  {}
func (Idx1) isBelow9()  {}
func (Idx1) isBelow10() {}
func (Idx1) isBelow11() {}
func (Idx1) isBelow12() {}
func (Idx1) isBelow13() {}
func (Idx1) isBelow14() {}
func (Idx1) isBelow15() {}
func (Idx1) isBelow16() {}

// I2 is the token denoting position 2.
var I2 Idx2

// Idx2 is the index token type for position 2. It satisfies Len3
// through Len16.
type Idx2 struct{}

// Value reports the position Idx2 denotes.
func (Idx2) Value() int { return 2 }

func (Idx2) isBelow3()  {}
func (Idx2) isBelow4()  {}
func (Idx2) isBelow5()  {}
func (Idx2) isBelow6()  {}
func (Idx2) isBelow7()  {}
func (Idx2) isBelow8()  {}
func (Idx2) isBelow9()  {}
func (Idx2) isBelow10() {}
func (Idx2) isBelow11() {}
func (Idx2) isBelow12() {}
func (Idx2) isBelow13() {}
func (Idx2) isBelow14() {}
func (Idx2) isBelow15() {}
func (Idx2) isBelow16() {}

// I3 is the token denoting position 3.
var I3 Idx3

// Idx3 is the index token type for position 3. It satisfies Len4
// through Len16.
type Idx3 struct{}

// Value reports the position Idx3 denotes.
func (Idx3) Value() int { return 3 }

func (Idx3) isBelow4()  {}
func (Idx3) isBelow5()  {}
func (Idx3) isBelow6()  {}
func (Idx3) isBelow7()  {}
func (Idx3) isBelow8()  {}
func (Idx3) isBelow9()  {}
func (Idx3) isBelow10() {}
func (Idx3) isBelow11() {}
func (Idx3) isBelow12() {}
func (Idx3) isBelow13() {}
func (Idx3) isBelow14() {}
func (Idx3) isBelow15() {}
func (Idx3) isBelow16() {}

// I4 is the token denoting position 4.
var I4 Idx4

// Idx4 is the index token type for position 4. It satisfies Len5
// through Len16.
type Idx4 struct{}

// Value reports the position Idx4 denotes.
func (Idx4) Value() int { return 4 }

func (Idx4) isBelow5()  {}
func (Idx4) isBelow6()  {}
func (Idx4) isBelow7()  {}
func (Idx4) isBelow8()  {}
func (Idx4) isBelow9()  {}
func (Idx4) isBelow10() {}
func (Idx4) isBelow11() {}
func (Idx4) isBelow12() {}
func (Idx4) isBelow13() {}
func (Idx4) isBelow14() {}
func (Idx4) isBelow15() {}
func (Idx4) isBelow16() {}

// I5 is the token denoting position 5.
var I5 Idx5

// Idx5 is the index token type for position 5. It satisfies Len6
// through Len16.
type Idx5 struct{}

// Value reports the position Idx5 denotes.
func (Idx5) Value() int { return 5 }

func (Idx5) isBelow6()  {}
func (Idx5) isBelow7()  {}
func (Idx5) isBelow8()  {}
func (Idx5) isBelow9()  {}
func (Idx5) isBelow10() {}
func (Idx5) isBelow11() {}
func (Idx5) isBelow12() {}
func (Idx5) isBelow13() {}
func (Idx5) isBelow14() {}
func (Idx5) isBelow15() {}
func (Idx5) isBelow16() {}

// I6 is the token denoting position 6.
var I6 Idx6

// Idx6 is the index token type for position 6. It satisfies Len7
// through Len16.
type Idx6 struct{}

// Value reports the position Idx6 denotes.
func (Idx6) Value() int { return 6 }

func (Idx6) isBelow7()  {}
func (Idx6) isBelow8()  {}
func (Idx6) isBelow9()  {}
func (Idx6) isBelow10() {}
func (Idx6) isBelow11() {}
func (Idx6) isBelow12() {}
func (Idx6) isBelow13() {}
func (Idx6) isBelow14() {}
func (Idx6) isBelow15() {}
func (Idx6) isBelow16() {}

// I7 is the token denoting position 7.
var I7 Idx7

// Idx7 is the index token type for position 7. It satisfies Len8
// through Len16.
type Idx7 struct{}

// Value reports the position Idx7 denotes.
func (Idx7) Value() int { return 7 }

func (Idx7) isBelow8()  {}
func (Idx7) isBelow9()  {}
func (Idx7) isBelow10() {}
func (Idx7) isBelow11() {}
func (Idx7) isBelow12() {}
func (Idx7) isBelow13() {}
func (Idx7) isBelow14() {}
func (Idx7) isBelow15() {}
func (Idx7) isBelow16() {}

// I8 is the token denoting position 8.
var I8 Idx8

// Idx8 is the index token type for position 8. It satisfies Len9
// through Len16.
type Idx8 struct{}

// Value reports the position Idx8 denotes.
func (Idx8) Value() int { return 8 }

func (Idx8) isBelow9()  {}
func (Idx8) isBelow10() {}
func (Idx8) isBelow11() {}
func (Idx8) isBelow12() {}
func (Idx8) isBelow13() {}
func (Idx8) isBelow14() {}
func (Idx8) isBelow15() {}
func (Idx8) isBelow16() {}

// I9 is the token denoting position 9.
var I9 Idx9

// Idx9 is the index token type for position 9. It satisfies Len10
// through Len16.
type Idx9 struct{}

// Value reports the position Idx9 denotes.
func (Idx9) Value() int { return 9 }

func (Idx9) isBelow10() {}
func (Idx9) isBelow11() {}
func (Idx9) isBelow12() {}
func (Idx9) isBelow13() {}
func (Idx9) isBelow14() {}
func (Idx9) isBelow15() {}
func (Idx9) isBelow16() {}

// I10 is the token denoting position 10.
var I10 Idx10

// Idx10 is the index token type for position 10. It satisfies Len11
// through Len16.
type Idx10 struct{}

// Value reports the position Idx10 denotes.
func (Idx10) Value() int { return 10 }

func (Idx10) isBelow11() {}
func (Idx10) isBelow12() {}
func (Idx10) isBelow13() {}
func (Idx10) isBelow14() {}
func (Idx10) isBelow15() {}
func (Idx10) isBelow16() {}

// I11 is the token denoting position 11.
var I11 Idx11

// Idx11 is the index token type for position 11. It satisfies Len12
// through Len16.
type Idx11 struct{}

// Value reports the position Idx11 denotes.
func (Idx11) Value() int { return 11 }

func (Idx11) isBelow12() {}
func (Idx11) isBelow13() {}
func (Idx11) isBelow14() {}
func (Idx11) isBelow15() {}
func (Idx11) isBelow16() {}

// I12 is the token denoting position 12.
var I12 Idx12

// Idx12 is the index token type for position 12. It satisfies Len13
// through Len16.
type Idx12 struct{}

// Value reports the position Idx12 denotes.
func (Idx12) Value() int { return 12 }

func (Idx12) isBelow13() {}
func (Idx12) isBelow14() {}
func (Idx12) isBelow15() {}
func (Idx12) isBelow16() {}

// I13 is the token denoting position 13.
var I13 Idx13

// Idx13 is the index token type for position 13. It satisfies Len14
// through Len16.
type Idx13 struct{}

// Value reports the position Idx13 denotes.
func (Idx13) Value() int { return 13 }

func (Idx13) isBelow14() {}
func (Idx13) isBelow15() {}
func (Idx13) isBelow16() {}

// I14 is the token denoting position 14.
var I14 Idx14

// Idx14 is the index token type for position 14. It satisfies Len15
// through Len16.
type Idx14 struct{}

// Value reports the position Idx14 denotes.
func (Idx14) Value() int { return 14 }

func (Idx14) isBelow15() {}
func (Idx14) isBelow16() {}

// I15 is the token denoting position 15.
var I15 Idx15

// Idx15 is the index token type for position 15. It satisfies Len16
// through Len16.
type Idx15 struct{}

// Value reports the position Idx15 denotes.
func (Idx15) Value() int { return 15 }

func (Idx15) isBelow16() {}

// Len0 is the length marker for 0. No index token satisfies it, so every
// indexing expression against an empty vector is rejected.
type Len0 interface {
	Index
	isBelow0()
}

// Len1 is the length marker for 1: only the token denoting position 0
// satisfies it.
type Len1 interface {
	Index
	isBelow1()
}

// Len2 is the length marker for 2: exactly the tokens denoting positions
// 0 through 1 satisfy it.
type Len2 interface {
	Index
	isBelow2()
}

// Len3 is the length marker for 3: exactly the tokens denoting positions
// 0 through 2 satisfy it.
type Len3 interface {
	Index
	isBelow3()
}

// Len4 is the length marker for 4: exactly the tokens denoting positions
// 0 through 3 satisfy it.
type Len4 interface {
	Index
	isBelow4()
}

// Len5 is the length marker for 5: exactly the tokens denoting positions
// 0 through 4 satisfy it.
type Len5 interface {
	Index
	isBelow5()
}

// Len6 is the length marker for 6: exactly the tokens denoting positions
// 0 through 5 satisfy it.
type Len6 interface {
	Index
	isBelow6()
}

// Len7 is the length marker for 7: exactly the tokens denoting positions
// 0 through 6 satisfy it.
type Len7 interface {
	Index
	isBelow7()
}

// Len8 is the length marker for 8: exactly the tokens denoting positions
// 0 through 7 satisfy it.
type Len8 interface {
	Index
	isBelow8()
}

// Len9 is the length marker for 9: exactly the tokens denoting positions
// 0 through 8 satisfy it.
type Len9 interface {
	Index
	isBelow9()
}

// Len10 is the length marker for 10: exactly the tokens denoting positions
// 0 through 9 satisfy it.
type Len10 interface {
	Index
	isBelow10()
}

// Len11 is the length marker for 11: exactly the tokens denoting positions
// 0 through 10 satisfy it.
type Len11 interface {
	Index
	isBelow11()
}

// Len12 is the length marker for 12: exactly the tokens denoting positions
// 0 through 11 satisfy it.
type Len12 interface {
	Index
	isBelow12()
}

// Len13 is the length marker for 13: exactly the tokens denoting positions
// 0 through 12 satisfy it.
type Len13 interface {
	Index
	isBelow13()
}

// Len14 is the length marker for 14: exactly the tokens denoting positions
// 0 through 13 satisfy it.
type Len14 interface {
	Index
	isBelow14()
}

// Len15 is the length marker for 15: exactly the tokens denoting positions
// 0 through 14 satisfy it.
type Len15 interface {
	Index
	isBelow15()
}

// Len16 is the length marker for 16: exactly the tokens denoting positions
// 0 through 15 satisfy it.
type Len16 interface {
	Index
	isBelow16()
}
