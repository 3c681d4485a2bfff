package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pear-vc/demoday-engine/pkg/models"
)

// Dataset is a seed directory of companies and their founders. The built-in
// demo dataset is the default; deployments can replace it with a YAML file.
type Dataset struct {
	Companies []*models.Company
	Founders  []*models.Founder
}

// Default returns the built-in demo dataset.
func Default() *Dataset {
	return &Dataset{
		Companies: Companies(),
		Founders:  Founders(),
	}
}

type fileCompany struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Tagline      string   `yaml:"tagline"`
	Logo         string   `yaml:"logo"`
	Description  string   `yaml:"description"`
	Industry     string   `yaml:"industry"`
	Stage        string   `yaml:"stage"`
	Batch        string   `yaml:"batch"`
	Location     string   `yaml:"location"`
	Website      string   `yaml:"website"`
	VideoURL     string   `yaml:"video_url"`
	PitchDeckURL string   `yaml:"pitch_deck_url"`
	Tags         []string `yaml:"tags"`
	Featured     bool     `yaml:"featured"`
	Image        string   `yaml:"image"`
}

type fileFounder struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	Photo     string `yaml:"photo"`
	Bio       string `yaml:"bio"`
	LinkedIn  string `yaml:"linkedin"`
	Twitter   string `yaml:"twitter"`
	CompanyID string `yaml:"company_id"`
}

type seedFile struct {
	Companies []fileCompany `yaml:"companies"`
	Founders  []fileFounder `yaml:"founders"`
}

// LoadFile reads a YAML seed dataset from path.
func LoadFile(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseFileContent(content)
}

// ParseFileContent parses a YAML seed dataset and validates its referential
// integrity: IDs must be unique, stages must be known, and every founder
// must reference a company defined in the same file.
func ParseFileContent(content []byte) (*Dataset, error) {
	var file seedFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(file.Companies) == 0 {
		return nil, fmt.Errorf("seed file defines no companies")
	}

	dataset := &Dataset{}
	companyIDs := make(map[string]bool, len(file.Companies))
	for i, c := range file.Companies {
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("company %d: id and name are required", i)
		}
		if companyIDs[c.ID] {
			return nil, fmt.Errorf("duplicate company id %q", c.ID)
		}
		if c.Stage != "" && !models.IsValidStage(c.Stage) {
			return nil, fmt.Errorf("company %q: unknown stage %q", c.ID, c.Stage)
		}
		companyIDs[c.ID] = true
		dataset.Companies = append(dataset.Companies, &models.Company{
			ID:           c.ID,
			Name:         c.Name,
			Tagline:      c.Tagline,
			Logo:         c.Logo,
			Description:  c.Description,
			Industry:     c.Industry,
			Stage:        c.Stage,
			Batch:        c.Batch,
			Location:     c.Location,
			Website:      c.Website,
			VideoURL:     c.VideoURL,
			PitchDeckURL: c.PitchDeckURL,
			Tags:         c.Tags,
			Featured:     c.Featured,
			Image:        c.Image,
			Founders:     []*models.Founder{},
		})
	}

	founderIDs := make(map[string]bool, len(file.Founders))
	for i, f := range file.Founders {
		if f.ID == "" || f.Name == "" {
			return nil, fmt.Errorf("founder %d: id and name are required", i)
		}
		if founderIDs[f.ID] {
			return nil, fmt.Errorf("duplicate founder id %q", f.ID)
		}
		if !companyIDs[f.CompanyID] {
			return nil, fmt.Errorf("founder %q references unknown company %q", f.ID, f.CompanyID)
		}
		founderIDs[f.ID] = true
		dataset.Founders = append(dataset.Founders, &models.Founder{
			ID:        f.ID,
			Name:      f.Name,
			Title:     f.Title,
			Photo:     f.Photo,
			Bio:       f.Bio,
			LinkedIn:  f.LinkedIn,
			Twitter:   f.Twitter,
			CompanyID: f.CompanyID,
		})
	}

	return dataset, nil
}
