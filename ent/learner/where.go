// Code generated by ent, DO NOT EDIT.

package learner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldName, v))
}

// AgeBand applies equality check predicate on the "age_band" field. It's identical to AgeBandEQ.
func AgeBand(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldAgeBand, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldName, v))
}

// AgeBandEQ applies the EQ predicate on the "age_band" field.
func AgeBandEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldAgeBand, v))
}

// AgeBandNEQ applies the NEQ predicate on the "age_band" field.
func AgeBandNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldAgeBand, v))
}

// AgeBandIn applies the In predicate on the "age_band" field.
func AgeBandIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldAgeBand, vs...))
}

// AgeBandNotIn applies the NotIn predicate on the "age_band" field.
func AgeBandNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldAgeBand, vs...))
}

// AgeBandGT applies the GT predicate on the "age_band" field.
func AgeBandGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldAgeBand, v))
}

// AgeBandGTE applies the GTE predicate on the "age_band" field.
func AgeBandGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldAgeBand, v))
}

// AgeBandLT applies the LT predicate on the "age_band" field.
func AgeBandLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldAgeBand, v))
}

// AgeBandLTE applies the LTE predicate on the "age_band" field.
func AgeBandLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldAgeBand, v))
}

// AgeBandContains applies the Contains predicate on the "age_band" field.
func AgeBandContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldAgeBand, v))
}

// AgeBandHasPrefix applies the HasPrefix predicate on the "age_band" field.
func AgeBandHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldAgeBand, v))
}

// AgeBandHasSuffix applies the HasSuffix predicate on the "age_band" field.
func AgeBandHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldAgeBand, v))
}

// AgeBandEqualFold applies the EqualFold predicate on the "age_band" field.
func AgeBandEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldAgeBand, v))
}

// AgeBandContainsFold applies the ContainsFold predicate on the "age_band" field.
func AgeBandContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldAgeBand, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.NotPredicates(p))
}
