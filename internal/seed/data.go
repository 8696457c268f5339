package seed

import (
	"time"

	"pet-care-dashboard/internal/domain/appointments"
	"pet-care-dashboard/internal/domain/catalog"
	"pet-care-dashboard/internal/domain/health"
	"pet-care-dashboard/internal/domain/medications"
	"pet-care-dashboard/internal/domain/pets"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

var catalogProducts = []catalog.AddInput{
	{
		Kind: catalog.KindMedication, Name: "Heartgard Plus",
		Description: "Monthly heartworm prevention for dogs", Price: 45.99,
		Dosage: "1 chewable tablet", Frequency: "Monthly", ForPetTypes: []string{"Dog"},
		Manufacturer: "Boehringer Ingelheim", InStock: true,
		ImageURL: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=300&q=80",
	},
	{
		Kind: catalog.KindMedication, Name: "Frontline Plus",
		Description: "Flea and tick prevention for cats and dogs", Price: 38.5,
		Dosage: "1 applicator", Frequency: "Monthly", ForPetTypes: []string{"Dog", "Cat"},
		Manufacturer: "Merial", InStock: true,
		ImageURL: "https://images.unsplash.com/photo-1598543926675-40f170ae3170?w=300&q=80",
	},
	{
		Kind: catalog.KindMedication, Name: "Apoquel",
		Description: "For treatment of allergic dermatitis in dogs", Price: 89.99,
		Dosage: "16mg tablet", Frequency: "Daily", ForPetTypes: []string{"Dog"},
		Manufacturer: "Zoetis", InStock: true,
		ImageURL: "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?w=300&q=80",
	},
	{
		Kind: catalog.KindMedication, Name: "Cosequin",
		Description: "Joint health supplement for dogs and cats", Price: 32.99,
		Dosage: "1-2 tablets", Frequency: "Daily", ForPetTypes: []string{"Dog", "Cat"},
		Manufacturer: "Nutramax Laboratories", InStock: true,
		ImageURL: "https://images.unsplash.com/photo-1585435557343-3b348031e799?w=300&q=80",
	},
	{
		Kind: catalog.KindMedication, Name: "Revolution",
		Description: "Parasite prevention for cats", Price: 42.75,
		Dosage: "1 applicator", Frequency: "Monthly", ForPetTypes: []string{"Cat"},
		Manufacturer: "Zoetis", InStock: false,
		ImageURL: "https://images.unsplash.com/photo-1606591199505-4292e101dce7?w=300&q=80",
	},

	{
		Kind: catalog.KindVaccination, Name: "Rabies Vaccine",
		Description: "Core vaccine required by law in most areas", Price: 25.99,
		ForPetTypes: []string{"Dog", "Cat"}, Manufacturer: "Zoetis",
		Frequency: "1-3 years", RecommendedAge: "12-16 weeks", InStock: true,
		ImageURL:    "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=300&q=80",
		SideEffects: "Mild fever, lethargy, reduced appetite",
	},
	{
		Kind: catalog.KindVaccination, Name: "DHPP Vaccine",
		Description: "Protects against Distemper, Hepatitis, Parainfluenza, and Parvovirus", Price: 32.5,
		ForPetTypes: []string{"Dog"}, Manufacturer: "Merck Animal Health",
		Frequency: "1 year", RecommendedAge: "6-8 weeks, with boosters", InStock: true,
		ImageURL: "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?w=300&q=80",
	},
	{
		Kind: catalog.KindVaccination, Name: "FVRCP Vaccine",
		Description: "Protects cats against Feline Viral Rhinotracheitis, Calicivirus, and Panleukopenia", Price: 28.99,
		ForPetTypes: []string{"Cat"}, Manufacturer: "Boehringer Ingelheim",
		Frequency: "1 year", RecommendedAge: "6-8 weeks, with boosters", InStock: true,
		ImageURL: "https://images.unsplash.com/photo-1606591199505-4292e101dce7?w=300&q=80",
	},
	{
		Kind: catalog.KindVaccination, Name: "Bordetella Vaccine",
		Description: "Protects against kennel cough", Price: 22.75,
		ForPetTypes: []string{"Dog"}, Manufacturer: "Zoetis",
		Frequency: "6 months - 1 year", RecommendedAge: "8 weeks", InStock: true,
		ImageURL: "https://images.unsplash.com/photo-1585435557343-3b348031e799?w=300&q=80",
	},
	{
		Kind: catalog.KindVaccination, Name: "Leptospirosis Vaccine",
		Description: "Protects against bacterial infection", Price: 24.5,
		ForPetTypes: []string{"Dog"}, Manufacturer: "Merck Animal Health",
		Frequency: "1 year", RecommendedAge: "12 weeks, with booster", InStock: false,
		ImageURL:    "https://images.unsplash.com/photo-1598543926675-40f170ae3170?w=300&q=80",
		SideEffects: "Facial swelling, hives (rare)",
	},
}

var householdPets = []pets.CreateInput{
	{
		Name: "Buddy", Breed: "Golden Retriever", Age: 3, Type: "Dog", Weight: "65 lbs",
		BirthDate: datePtr(2020, time.May, 15), MicrochipID: "985121056478523", Allergies: "Chicken",
		PhotoURL: "https://images.unsplash.com/photo-1552053831-71594a27632d?w=300&q=80",
	},
	{
		Name: "Bella", Breed: "Siamese Cat", Age: 2, Type: "Cat", Weight: "8 lbs",
		BirthDate: datePtr(2021, time.August, 23), MicrochipID: "985121056478524",
		PhotoURL: "https://images.unsplash.com/photo-1513360371669-4adf3dd7dff8?w=300&q=80",
	},
	{
		Name: "Charlie", Breed: "Beagle", Age: 4, Type: "Dog", Weight: "25 lbs",
		BirthDate: datePtr(2019, time.November, 10), MicrochipID: "985121056478525", SpecialNeeds: "Joint supplements",
		PhotoURL: "https://images.unsplash.com/photo-1505628346881-b72b27e84530?w=300&q=80",
	},
}

// inDays es relativo a hoy.
var householdAppointments = []struct {
	inDays int
	input  appointments.BookInput
}{
	{3, appointments.BookInput{Title: "Vet Checkup", Time: "10:00 AM", Type: "Veterinary", PetName: "Buddy", Provider: "Dr. Smith Animal Clinic"}},
	{7, appointments.BookInput{Title: "Grooming", Time: "2:30 PM", Type: "Grooming", PetName: "Bella", Provider: "Pet Spa & Grooming"}},
	{0, appointments.BookInput{Title: "Vaccination", Time: "3:45 PM", Type: "Veterinary", PetName: "Charlie", Provider: "Dr. Smith Animal Clinic"}},
}

var householdMedications = []medications.AddInput{
	{
		Name: "Heartworm Prevention", Dosage: "1 tablet", Frequency: "Monthly",
		StartDate: date(2023, time.January, 15), Times: "08:00", Notes: "Give with food",
		LastGiven: datePtr(2023, time.May, 15),
	},
	{
		Name: "Antibiotics", Dosage: "10mg", Frequency: "Twice Daily",
		StartDate: date(2023, time.June, 1), EndDate: datePtr(2023, time.June, 14), Times: "08:00,20:00",
	},
	{
		Name: "Joint Supplement", Dosage: "1 scoop", Frequency: "Daily",
		StartDate: date(2023, time.March, 10), Times: "18:00", Notes: "Mix with food",
		LastGiven: datePtr(2023, time.June, 9),
	},
}

type dayDiet struct {
	day      int
	food     string
	amount   string
	calories int
}

type dayExercise struct {
	day       int
	activity  string
	minutes   int
	intensity health.Intensity
}

// healthHistory arma el historial por nombre de mascota.
func healthHistory() map[string][]health.AddInput {
	return map[string][]health.AddInput{
		"Buddy": petHistory(
			[]float64{65.2, 66.5, 67.1, 66.8, 66.3, 65.9},
			[]dayDiet{
				{14, "Premium Dry Dog Food", "2 cups", 720},
				{13, "Premium Dry Dog Food", "2 cups", 720},
				{12, "Premium Dry Dog Food", "2 cups", 720},
				{11, "Premium Dry Dog Food + Chicken", "2 cups + 4oz", 850},
				{10, "Premium Dry Dog Food", "2 cups", 720},
			},
			[]dayExercise{
				{14, "Walk", 45, health.IntensityModerate},
				{13, "Fetch", 30, health.IntensityHigh},
				{12, "Walk", 30, health.IntensityLow},
				{11, "Dog Park", 60, health.IntensityHigh},
				{10, "Walk", 40, health.IntensityModerate},
			},
			health.MeasurementDetail{Height: "24 inches", Length: "36 inches"},
		),
		"Bella": petHistory(
			[]float64{8.2, 8.5, 8.7, 8.9, 9.1, 9.0},
			[]dayDiet{
				{14, "Premium Cat Food", "1/2 cup", 250},
				{13, "Premium Cat Food", "1/2 cup", 250},
				{12, "Premium Cat Food + Wet Food", "1/2 cup + 2oz", 320},
				{11, "Premium Cat Food", "1/2 cup", 250},
				{10, "Premium Cat Food", "1/2 cup", 250},
			},
			[]dayExercise{
				{14, "Play with toys", 15, health.IntensityModerate},
				{13, "Climbing cat tree", 10, health.IntensityHigh},
				{12, "Play with toys", 20, health.IntensityModerate},
				{11, "Chasing laser pointer", 15, health.IntensityHigh},
				{10, "Play with toys", 10, health.IntensityLow},
			},
			health.MeasurementDetail{Height: "10 inches", Length: "18 inches"},
		),
	}
}

// petHistory: pesos mensuales el 15 de enero a junio de 2023; dieta y ejercicio en junio.
func petHistory(weights []float64, diet []dayDiet, exercise []dayExercise, m health.MeasurementDetail) []health.AddInput {
	out := make([]health.AddInput, 0, len(weights)+len(diet)+len(exercise)+1)
	for i, w := range weights {
		out = append(out, health.AddInput{
			Kind:       health.KindWeight,
			RecordedOn: date(2023, time.January+time.Month(i), 15),
			Weight:     &health.WeightDetail{Value: w, Unit: "lbs"},
		})
	}
	for _, d := range diet {
		out = append(out, health.AddInput{
			Kind:       health.KindDiet,
			RecordedOn: date(2023, time.June, d.day),
			Diet:       &health.DietDetail{Food: d.food, Amount: d.amount, Calories: d.calories},
		})
	}
	for _, e := range exercise {
		out = append(out, health.AddInput{
			Kind:       health.KindExercise,
			RecordedOn: date(2023, time.June, e.day),
			Exercise:   &health.ExerciseDetail{Activity: e.activity, DurationMinutes: e.minutes, Intensity: e.intensity},
		})
	}
	out = append(out, health.AddInput{
		Kind:        health.KindMeasurement,
		RecordedOn:  date(2023, time.June, 15),
		Measurement: &m,
	})
	return out
}
