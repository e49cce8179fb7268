package config

type Storage struct {
	Contacts Contacts `envPrefix:"CONTACTS_"`
	Colours  Colours  `envPrefix:"COLOURS_"`
}

type Contacts struct {
	DSN string `env:"DSN,expand" envDefault:"postgres://localhost:5432/recordbox"`
}

type Colours struct {
	DSN string `env:"DSN,expand" envDefault:"mongodb://localhost:27017/recordbox"`
}
