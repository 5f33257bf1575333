package database

const schema = `
CREATE TABLE films (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tmdb_id INTEGER UNIQUE,
	title TEXT NOT NULL,
	alt_title TEXT,
	director TEXT,
	alt_name TEXT,
	cast_members TEXT,
	crew_members TEXT,
	rating REAL,
	industry_rating REAL NOT NULL DEFAULT 0,
	review TEXT,
	blurb TEXT,
	synopsis TEXT,
	series TEXT,
	language TEXT,
	country TEXT,
	genre TEXT NOT NULL DEFAULT '[]',
	tags TEXT,
	awards_won TEXT,
	release_date TEXT,
	runtime_seconds INTEGER,
	budget INTEGER NOT NULL DEFAULT 0,
	box_office INTEGER NOT NULL DEFAULT 0,
	seen BOOLEAN NOT NULL DEFAULT 0,
	favourite BOOLEAN NOT NULL DEFAULT 0,
	watchlist BOOLEAN NOT NULL DEFAULT 0,
	date_watched TEXT,
	rewatch_count INTEGER NOT NULL DEFAULT 0,
	poster TEXT,
	background_pic TEXT,
	medium TEXT,
	sound BOOLEAN NOT NULL DEFAULT 1,
	colour BOOLEAN NOT NULL DEFAULT 1,
	festival TEXT,
	external_links TEXT,
	notes TEXT,
	owned_id INTEGER REFERENCES film_collections(id) ON DELETE SET NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX idx_films_tmdb_id ON films(tmdb_id);
CREATE INDEX idx_films_title ON films(title COLLATE NOCASE);
CREATE INDEX idx_films_director ON films(director);

CREATE TABLE film_collections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owned BOOLEAN NOT NULL DEFAULT 0,
	format TEXT NOT NULL,
	title TEXT NOT NULL,
	director TEXT,
	release_year INTEGER,
	genre TEXT NOT NULL DEFAULT '[]',
	length_seconds INTEGER,
	type TEXT NOT NULL,
	cover_art TEXT,
	price REAL,
	language TEXT,
	country TEXT,
	studio TEXT,
	runtime_seconds INTEGER,
	link TEXT,
	notes TEXT
);

CREATE TABLE book_collections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owned BOOLEAN NOT NULL DEFAULT 0,
	format TEXT NOT NULL,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	publication_date TEXT,
	isbn TEXT,
	genre TEXT NOT NULL DEFAULT '[]',
	page_count INTEGER,
	cover_image TEXT,
	price REAL,
	language TEXT,
	country TEXT,
	publisher TEXT,
	link TEXT,
	notes TEXT
);

CREATE TABLE books (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	owned_id INTEGER REFERENCES book_collections(id) ON DELETE SET NULL,
	year_released INTEGER,
	year_specificity TEXT,
	rating REAL,
	genre TEXT NOT NULL DEFAULT '[]',
	tags TEXT,
	review TEXT,
	page_count INTEGER,
	format TEXT,
	cover TEXT,
	external_links TEXT,
	isbn TEXT,
	series TEXT,
	synopsis TEXT,
	publisher TEXT,
	edition TEXT,
	language TEXT,
	country TEXT
);

CREATE INDEX idx_books_author ON books(author);

CREATE TABLE watches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	brand TEXT NOT NULL,
	model TEXT NOT NULL,
	reference_number TEXT,
	registration_number TEXT,
	country TEXT,
	case_size REAL,
	price REAL,
	photo TEXT,
	link TEXT,
	owned BOOLEAN NOT NULL DEFAULT 0,
	notes TEXT
);

CREATE TABLE music (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owned BOOLEAN NOT NULL DEFAULT 0,
	format TEXT NOT NULL,
	title TEXT NOT NULL,
	artist TEXT NOT NULL,
	release_date TEXT,
	catalog_number TEXT,
	genre TEXT NOT NULL DEFAULT '[]',
	length_seconds INTEGER,
	type TEXT NOT NULL,
	cover_art TEXT,
	price REAL,
	language TEXT,
	country TEXT,
	label TEXT,
	link TEXT,
	notes TEXT
);

CREATE TABLE game_collections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owned BOOLEAN NOT NULL DEFAULT 0,
	platform TEXT NOT NULL,
	title TEXT NOT NULL,
	developer TEXT,
	release_date TEXT,
	genre TEXT NOT NULL DEFAULT '[]',
	cover_art TEXT,
	price REAL,
	language TEXT,
	country TEXT,
	publisher TEXT,
	link TEXT,
	notes TEXT
);

CREATE TABLE wardrobe (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category TEXT NOT NULL,
	brands TEXT,
	type TEXT,
	style TEXT,
	colour TEXT,
	pictures TEXT,
	price REAL,
	preferred_quantity INTEGER
);

CREATE TABLE art (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owned BOOLEAN NOT NULL DEFAULT 0,
	title TEXT,
	year INTEGER,
	year_specificity TEXT,
	artist TEXT,
	culture TEXT,
	type TEXT,
	format TEXT,
	info TEXT,
	techniques TEXT,
	price REAL,
	photo TEXT,
	link TEXT
);

CREATE TABLE extras_categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT
);

CREATE TABLE extras (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owned BOOLEAN NOT NULL DEFAULT 0,
	category_id INTEGER REFERENCES extras_categories(id) ON DELETE CASCADE,
	brand TEXT,
	model TEXT NOT NULL,
	price REAL,
	links TEXT,
	year INTEGER,
	year_specificity TEXT,
	additional_info TEXT
);

CREATE TABLE instruments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	instrument TEXT NOT NULL,
	brand TEXT,
	name TEXT NOT NULL,
	maker TEXT,
	category TEXT NOT NULL,
	type TEXT,
	year INTEGER,
	country TEXT,
	owned BOOLEAN NOT NULL DEFAULT 0,
	price REAL,
	photo TEXT,
	link TEXT,
	notes TEXT,
	date_bought TEXT,
	materials TEXT
);

CREATE TABLE performances (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	original_title TEXT,
	performance_type TEXT NOT NULL,
	original_language TEXT,
	language_heard TEXT,
	creator TEXT NOT NULL,
	alt_name TEXT,
	country TEXT,
	conductor TEXT,
	director TEXT,
	orchestra_ensemble TEXT,
	seen BOOLEAN NOT NULL DEFAULT 0,
	date_seen TEXT,
	location_seen TEXT,
	location_premiered TEXT,
	date_premiered TEXT,
	pieces TEXT,
	cast_members TEXT,
	rating REAL,
	review TEXT,
	images TEXT,
	external_links TEXT,
	year INTEGER,
	year_specificity TEXT,
	writers TEXT
);

CREATE TABLE lists (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	category TEXT NOT NULL CHECK(category IN ('films', 'books')),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE list_films (
	list_id INTEGER NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
	film_id INTEGER NOT NULL REFERENCES films(id) ON DELETE CASCADE,
	PRIMARY KEY (list_id, film_id)
);

CREATE TABLE list_books (
	list_id INTEGER NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
	book_id INTEGER NOT NULL REFERENCES books(id) ON DELETE CASCADE,
	PRIMARY KEY (list_id, book_id)
);
`

// migrations contains incremental schema changes. Each migration is applied
// in order based on the current user_version; migrations[0] is empty because
// version 0 uses the base schema.
var migrations = []string{
	"",
}
