package seeder

func Defaults() []Seeder {
	return []Seeder{
		PromptsSeeder{},
		DemoUserSeeder{},
	}
}
