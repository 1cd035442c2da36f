// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PsychologistsColumns holds the columns for the "psychologists" table.
	PsychologistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "specialties", Type: field.TypeJSON},
		{Name: "modalities", Type: field.TypeJSON},
		{Name: "avatar", Type: field.TypeString, Default: ""},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "experience", Type: field.TypeInt, Default: 0},
		{Name: "bio", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// PsychologistsTable holds the schema information for the "psychologists" table.
	PsychologistsTable = &schema.Table{
		Name:       "psychologists",
		Columns:    PsychologistsColumns,
		PrimaryKey: []*schema.Column{PsychologistsColumns[0]},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "time_slot_id", Type: field.TypeUUID},
		{Name: "patient_name", Type: field.TypeString},
		{Name: "patient_dni", Type: field.TypeString},
		{Name: "patient_email", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "specialty", Type: field.TypeString},
		{Name: "modality", Type: field.TypeEnum, Enums: []string{"online", "in_person"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled"}, Default: "scheduled"},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_patient_dni_patient_email",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5], SessionsColumns[6]},
			},
			{
				Name:    "session_psychologist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2], SessionsColumns[7]},
			},
			{
				Name:    "session_time_slot_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
		},
	}
	// TimeSlotsColumns holds the columns for the "time_slots" table.
	TimeSlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "modality", Type: field.TypeEnum, Enums: []string{"online", "in_person"}},
		{Name: "is_booked", Type: field.TypeBool, Default: false},
		{Name: "booked_by", Type: field.TypeString, Nullable: true},
	}
	// TimeSlotsTable holds the schema information for the "time_slots" table.
	TimeSlotsTable = &schema.Table{
		Name:       "time_slots",
		Columns:    TimeSlotsColumns,
		PrimaryKey: []*schema.Column{TimeSlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "timeslot_psychologist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[3], TimeSlotsColumns[4]},
			},
			{
				Name:    "timeslot_psychologist_id_is_booked_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[3], TimeSlotsColumns[7], TimeSlotsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PsychologistsTable,
		SessionsTable,
		TimeSlotsTable,
	}
)

func init() {
}
