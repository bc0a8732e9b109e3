package validation

import "testing"

func TestIsValidResumeLink(t *testing.T) {
	cases := []struct {
		link string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"https://drive.google.com/file/d/abc123/view", true},
		{"https://docs.google.com/document/d/xyz", true},
		{"http://drive.google.com/file/d/abc123", true},
		{"https://example.com/resume.pdf", true},
		{"http://example.com/resume.pdf", false},
		{"ftp://example.com/resume.pdf", false},
	}

	for _, tc := range cases {
		if got := IsValidResumeLink(tc.link); got != tc.want {
			t.Errorf("IsValidResumeLink(%q) = %v, want %v", tc.link, got, tc.want)
		}
	}
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"asha@college.edu", "hr.team@tech-nova.io", "a_b+c@mail.co"}
	for _, email := range valid {
		if !CompiledPatterns.Email.MatchString(email) {
			t.Errorf("expected %q to match email pattern", email)
		}
	}

	invalid := []string{"no-at-sign", "UPPER@Case.Com", "user@domain", "@missing.local"}
	for _, email := range invalid {
		if CompiledPatterns.Email.MatchString(email) {
			t.Errorf("expected %q to fail email pattern", email)
		}
	}
}

func TestAdmissionNumberPattern(t *testing.T) {
	valid := []string{"CS2021001", "1234", "AB12cd34EF"}
	for _, num := range valid {
		if !CompiledPatterns.AdmissionNumber.MatchString(num) {
			t.Errorf("expected %q to match admission number pattern", num)
		}
	}

	invalid := []string{"abc", "with space", "too-long-admission-num-123", "CS-2021"}
	for _, num := range invalid {
		if CompiledPatterns.AdmissionNumber.MatchString(num) {
			t.Errorf("expected %q to fail admission number pattern", num)
		}
	}
}

func TestStringValidation(t *testing.T) {
	if NewStringValidation("").Validate() {
		t.Error("required empty value should fail")
	}
	if NewStringValidation("   ").Validate() {
		t.Error("required blank value should fail")
	}
	if !NewStringValidation("").WithRequired(false).Validate() {
		t.Error("optional empty value should pass")
	}
	if NewStringValidation("ab").WithMinLength(3).Validate() {
		t.Error("value below min length should fail")
	}
	if NewStringValidation("abcdef").WithMaxLength(4).Validate() {
		t.Error("value above max length should fail")
	}
	if !NewStringValidation("secret1").WithMinLength(PasswordMinLength).Validate() {
		t.Error("value within bounds should pass")
	}
	if NewStringValidation("nope").WithPattern(CompiledPatterns.Email).Validate() {
		t.Error("value failing pattern should fail")
	}
}
