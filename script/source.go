package script

// Source is the embedded bootstrap script (spec.md §4.5 step 5): it
// declares every non-root class the corelib package has primitives for,
// in the tiny `class Name is Super { foreign sig ... }` DSL this
// package's parser understands. Object, Class, and Object metaclass are
// not declared here — corevm.Bootstrap builds the triangle by hand in
// steps 2-4 before ever calling Interpret.
const Source = `
class Bool is Object {
  foreign !
  foreign toString
  foreign ==(_)
  foreign !=(_)
}

class Fiber is Object {
  static foreign new(_)
  static foreign yield()
  static foreign yield(_)
  static foreign abort(_)
  static foreign suspend()
  static foreign current
  foreign call()
  foreign call(_)
  foreign try()
  foreign try(_)
  foreign transfer()
  foreign transfer(_)
  foreign transferError(_)
  foreign isDone
  foreign error
}

class Fn is Object {
  foreign new(_)
  foreign arity
  foreign call()
  foreign call(_)
  foreign call(_,_)
  foreign call(_,_,_)
  foreign call(_,_,_,_)
  foreign call(_,_,_,_,_)
  foreign call(_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_,_,_,_,_,_,_,_)
  foreign call(_,_,_,_,_,_,_,_,_,_,_,_,_,_,_,_)
}

class Null is Object {
  foreign !
  foreign toString
}

class Num is Object {
  foreign +(_)
  foreign -(_)
  foreign *(_)
  foreign /(_)
  foreign %(_)
  foreign <(_)
  foreign >(_)
  foreign <=(_)
  foreign >=(_)
  foreign &(_)
  foreign |(_)
  foreign ^(_)
  foreign <<(_)
  foreign >>(_)
  foreign ==(_)
  foreign !=(_)
  foreign -
  foreign ~
  foreign ..(_)
  foreign ...(_)
  foreign abs
  foreign ceil
  foreign floor
  foreign round
  foreign sqrt
  foreign sign
  foreign fraction
  foreign truncate
  foreign isNan
  foreign isInfinity
  foreign isInteger
  foreign clamp(_,_)
  foreign toString
  foreign sin
  foreign cos
  foreign tan
  foreign asin
  foreign acos
  foreign atan
  foreign log
  foreign log2
  foreign exp
  foreign atan(_)
  foreign pow(_)
  static foreign infinity
  static foreign nan
  static foreign pi
  static foreign tau
  static foreign largest
  static foreign smallest
  static foreign maxSafeInteger
  static foreign minSafeInteger
  static foreign fromString(_)
}

class String is Object {
  foreign +(_)
  foreign ==(_)
  foreign !=(_)
  foreign toString
  foreign count
  foreign byteCount_
  foreign byteAt_(_)
  foreign codePointAt_(_)
  foreign iterate(_)
  foreign iteratorValue(_)
  foreign contains(_)
  foreign startsWith(_)
  foreign endsWith(_)
  foreign indexOf(_)
  foreign indexOf(_,_)
  foreign [_]
  foreign $(_)
  static foreign fromCodePoint(_)
  static foreign fromByte(_)
}

class List is Object {
  static foreign new()
  static foreign filled(_,_)
  foreign count
  foreign add(_)
  foreign insert(_,_)
  foreign removeAt(_)
  foreign swap(_,_)
  foreign indexOf(_)
  foreign clear()
  foreign [_]
  foreign [_]=(_)
  foreign iterate(_)
  foreign iteratorValue(_)
}

class Map is Object {
  static foreign new()
  foreign count
  foreign [_]
  foreign [_]=(_)
  foreign containsKey(_)
  foreign remove(_)
  foreign clear()
}

class Range is Object {
  foreign from
  foreign to
  foreign min
  foreign max
  foreign isInclusive
  foreign toString
  foreign iterate(_)
  foreign iteratorValue(_)
}

class System {
  static foreign clock
  static foreign gc()
  static foreign writeString_(_)
  static foreign write(_)
  static foreign print_(_)
}
`
