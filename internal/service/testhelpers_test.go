package service

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
