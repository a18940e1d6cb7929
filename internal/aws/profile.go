package aws

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/vietdv277/stratus/pkg/types"
)

var (
	credentialsSectionRe = regexp.MustCompile(`^\[([^\]]+)\]$`)
	configSectionRe      = regexp.MustCompile(`^\[profile\s+([^\]]+)\]$`)
	regionRe             = regexp.MustCompile(`^\s*region\s*=\s*(.+)$`)
)

// ListProfiles reads AWS profiles from ~/.aws/credentials and ~/.aws/config.
// Profiles present in both files are merged, with the credentials entry
// winning and the config entry contributing its region.
func ListProfiles() ([]types.AWSProfile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	profileMap := make(map[string]*types.AWSProfile)

	credProfiles, err := parseProfileFile(filepath.Join(home, ".aws", "credentials"), "credentials")
	if err == nil {
		for i := range credProfiles {
			profileMap[credProfiles[i].Name] = &credProfiles[i]
		}
	}

	configProfiles, err := parseProfileFile(filepath.Join(home, ".aws", "config"), "config")
	if err == nil {
		for i := range configProfiles {
			p := configProfiles[i]
			if existing, ok := profileMap[p.Name]; ok {
				if existing.Region == "" {
					existing.Region = p.Region
				}
			} else {
				profileMap[p.Name] = &p
			}
		}
	}

	var profiles []types.AWSProfile
	for _, p := range profileMap {
		profiles = append(profiles, *p)
	}

	// "default" first, then alphabetical
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Name == "default" {
			return true
		}
		if profiles[j].Name == "default" {
			return false
		}
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}

// ValidateProfile checks if a profile exists
func ValidateProfile(name string) bool {
	profiles, err := ListProfiles()
	if err != nil {
		return false
	}

	for _, p := range profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

// parseProfileFile parses an AWS INI-style file. The config file uses
// [profile name] section headers (except [default]); the credentials file
// uses bare [name] headers.
func parseProfileFile(path, source string) ([]types.AWSProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var profiles []types.AWSProfile
	var current *types.AWSProfile

	flush := func() {
		if current != nil {
			profiles = append(profiles, *current)
		}
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		name := sectionName(line, source == "config")
		if name != "" {
			flush()
			current = &types.AWSProfile{Name: name, Source: source}
			continue
		}

		if current != nil {
			if matches := regionRe.FindStringSubmatch(line); len(matches) == 2 {
				current.Region = strings.TrimSpace(matches[1])
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func sectionName(line string, isConfigFile bool) string {
	if isConfigFile {
		if line == "[default]" {
			return "default"
		}
		if matches := configSectionRe.FindStringSubmatch(line); len(matches) == 2 {
			return strings.TrimSpace(matches[1])
		}
		return ""
	}

	if matches := credentialsSectionRe.FindStringSubmatch(line); len(matches) == 2 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}
