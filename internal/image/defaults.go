package image

// APIServicePort is the port the FX rate API listens on
const APIServicePort = 8000

// set of image definition names shipped with the CLI
const (
	NameAPI     = "fx-api"
	NameAirflow = "fx-airflow"
)

// DefaultDefinitions returns the image definitions for the platform's
// two services: the FX rate API and the Airflow scraper image
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Name:         NameAPI,
			Tag:          "fx-api:latest",
			BaseImage:    "python:3.11-slim",
			WorkDir:      "/app",
			Requirements: "requirements.txt",
			Copy: []CopyStep{
				{Source: "app/", Target: "./app/"},
			},
			Env: []EnvVar{
				{Name: "PYTHONUNBUFFERED", Value: "1"},
			},
			Expose:  APIServicePort,
			Command: []string{"uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8000"},
		},
		{
			Name:           NameAirflow,
			Tag:            "fx-airflow:latest",
			BaseImage:      "apache/airflow:2.7.3",
			SystemPackages: []string{"build-essential", "libffi-dev"},
			Requirements:   "requirements.txt",
			Copy: []CopyStep{
				{Source: "dags/", Target: "/opt/airflow/dags/"},
				{Source: "src/scrappers/", Target: "/opt/airflow/plugins/scrappers/"},
			},
			// the airflow base image runs unprivileged, so system
			// packages install as root before switching back
			BuildUser:   "root",
			RuntimeUser: "airflow",
		},
	}
}

// FindDefinition returns the named definition from the set
func FindDefinition(definitions []Definition, name string) (Definition, bool) {
	for _, def := range definitions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// Names returns the definition names in declaration order
func Names(definitions []Definition) []string {
	names := make([]string, 0, len(definitions))
	for _, def := range definitions {
		names = append(names, def.Name)
	}
	return names
}
