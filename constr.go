package temporal

/*
constr.go contains constraint and constraint group components which
serve to further restrict the values accepted by the constructors of
this package.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			debugConstraint(newLItem(i, "constraint"))
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = constraintViolationf("value is out of range")
		}
		return
	}
}

/*
DateRangeConstraint returns an instance of [Constraint] which rejects any
[Date] falling before min or after max.
*/
func DateRangeConstraint(min, max Date) Constraint[Date] {
	return func(val Date) (err error) {
		if val.IsBefore(min) || val.IsAfter(max) {
			err = constraintViolationf("date ", val, " is not in the allowed range [",
				min, ", ", max, "]")
		}
		return
	}
}

/*
DurationRangeConstraint returns a [Constraint] for [Duration] values to ensure
that the given value is not less than min and not greater than max.
*/
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return func(val Duration) (err error) {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			err = constraintViolationf("duration ", val, " is not in the allowed range [",
				min, ", ", max, "]")
		}
		return
	}
}

// PropertyConstraint returns a Constraint that applies a user-defined check function.
// That function should return nil if the property is satisfied or an error otherwise.
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) error {
		for _, c := range cs {
			if c(x) == nil {
				return nil
			}
		}
		return constraintViolationf("union failed all ", len(cs), " constraints")
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(cs) && err == nil; i++ {
			err = cs[i](x)
		}
		return
	}
}
