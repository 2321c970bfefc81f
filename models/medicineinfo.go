package models

import "strings"

// MedicineInfo holds the static lookup entry for a medicine
type MedicineInfo struct {
	Name        string `json:"name"`
	GenericName string `json:"genericName,omitempty"`
	Description string `json:"description,omitempty"`
	Dosage      string `json:"dosage"`
	MaxDaily    string `json:"maxDaily,omitempty"`
	Uses        string `json:"uses,omitempty"`
	SideEffects string `json:"sideEffects"`
	Warnings    string `json:"warnings"`
	Category    string `json:"category,omitempty"`
}

// medicineDatabase is the bundled lookup table for common over-the-counter
// and prescription medicines. This would typically query the RxNorm or
// OpenFDA APIs; the bundled table keeps lookups offline.
var medicineDatabase = map[string]MedicineInfo{
	"paracetamol": {
		Name:        "Paracetamol",
		GenericName: "Acetaminophen",
		Dosage:      "500mg-1000mg every 4-6 hours",
		MaxDaily:    "4000mg per day",
		Uses:        "Pain relief, fever reduction",
		SideEffects: "Rare: nausea, rash, liver damage (overdose)",
		Warnings:    "Do not exceed recommended dose. Avoid alcohol.",
		Category:    "Analgesic/Antipyretic",
	},
	"ibuprofen": {
		Name:        "Ibuprofen",
		GenericName: "Ibuprofen",
		Dosage:      "200mg-400mg every 4-6 hours",
		MaxDaily:    "1200mg per day (OTC)",
		Uses:        "Pain relief, inflammation, fever reduction",
		SideEffects: "Stomach upset, heartburn, dizziness",
		Warnings:    "Take with food. Avoid if allergic to NSAIDs.",
		Category:    "NSAID",
	},
	"amoxicillin": {
		Name:        "Amoxicillin",
		GenericName: "Amoxicillin",
		Dosage:      "250mg-500mg every 8 hours",
		MaxDaily:    "As prescribed by doctor",
		Uses:        "Bacterial infections",
		SideEffects: "Nausea, diarrhea, allergic reactions",
		Warnings:    "Complete full course. Inform doctor of allergies.",
		Category:    "Antibiotic",
	},
	"cetirizine": {
		Name:        "Cetirizine",
		GenericName: "Cetirizine HCl",
		Dosage:      "10mg once daily",
		MaxDaily:    "10mg per day",
		Uses:        "Allergies, hay fever, hives",
		SideEffects: "Drowsiness, dry mouth, fatigue",
		Warnings:    "May cause drowsiness. Avoid alcohol.",
		Category:    "Antihistamine",
	},
	"aspirin": {
		Name:        "Aspirin",
		GenericName: "Acetylsalicylic Acid",
		Dosage:      "75mg-325mg daily (low dose)",
		MaxDaily:    "4000mg per day (pain relief)",
		Uses:        "Pain relief, heart protection, stroke prevention",
		SideEffects: "Stomach irritation, bleeding risk",
		Warnings:    "Not for children under 16. Take with food.",
		Category:    "NSAID/Antiplatelet",
	},
	"omeprazole": {
		Name:        "Omeprazole",
		GenericName: "Omeprazole",
		Dosage:      "20mg once daily",
		MaxDaily:    "40mg per day",
		Uses:        "Acid reflux, stomach ulcers, GERD",
		SideEffects: "Headache, nausea, diarrhea",
		Warnings:    "Take before meals. Long-term use monitoring needed.",
		Category:    "Proton Pump Inhibitor",
	},
	"ors": {
		Name:        "ORS",
		GenericName: "Oral Rehydration Solution",
		Dosage:      "1 sachet in 200ml water",
		MaxDaily:    "As needed for dehydration",
		Uses:        "Dehydration, diarrhea, electrolyte replacement",
		SideEffects: "Rare: nausea if too concentrated",
		Warnings:    "Use clean water. Discard after 24 hours.",
		Category:    "Electrolyte Solution",
	},
	"metformin": {
		Name:        "Metformin",
		GenericName: "Metformin HCl",
		Dosage:      "500mg-1000mg twice daily",
		MaxDaily:    "2000mg per day",
		Uses:        "Type 2 diabetes management",
		SideEffects: "Nausea, diarrhea, metallic taste",
		Warnings:    "Take with meals. Monitor kidney function.",
		Category:    "Antidiabetic",
	},
	"salbutamol": {
		Name:        "Salbutamol",
		GenericName: "Albuterol",
		Dosage:      "2 puffs every 4-6 hours as needed",
		MaxDaily:    "As prescribed (usually max 8 puffs/day)",
		Uses:        "Asthma, bronchospasm, COPD",
		SideEffects: "Tremor, palpitations, headache",
		Warnings:    "Rinse mouth after use. Seek help if overused.",
		Category:    "Bronchodilator",
	},
	"vitamin d": {
		Name:        "Vitamin D",
		GenericName: "Cholecalciferol",
		Dosage:      "1000-2000 IU daily",
		MaxDaily:    "4000 IU per day",
		Uses:        "Bone health, immune support, vitamin D deficiency",
		SideEffects: "Rare at normal doses",
		Warnings:    "Do not exceed recommended dose without advice.",
		Category:    "Vitamin Supplement",
	},
}

// LookupMedicine returns the bundled entry for a medicine name,
// case-insensitive. Unknown names get the generic fallback shape so the
// lookup route always answers.
func LookupMedicine(name string) MedicineInfo {
	if info, ok := medicineDatabase[strings.ToLower(name)]; ok {
		return info
	}
	return MedicineInfo{
		Name:        name,
		Description: "Medicine information from FDA database",
		Dosage:      "As prescribed by physician",
		SideEffects: "Consult healthcare provider",
		Warnings:    "Read package insert carefully",
	}
}
