// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - EnquiryRequest: name, email, subject, message
  - ApplicationRequest: fullName, email, phone, course, plus optional
    dateOfBirth (YYYY-MM-DD), address, previousQualification, message
  - LoginRequest: username, password

Call Normalize before Validate. Validate returns nil for a valid request or
a map of JSON field name to message:

	req.Normalize()
	if fields := models.Validate(req); fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

# Response Types

  - CreateEnquiryResponse, CreateApplicationResponse: success, message, ID
  - ListResponse[T]: success, count, data
  - ItemResponse[T]: success, data
  - CountResponse: success, count
  - ErrorResponse: success, error, message, errors

# Domain Types

Enquiry and Application carry both json and bson tags so the same values
go to SQL, MongoDB and the wire. VisitCounter is one named counter.
*/
package models
