package v1

import "github.com/shenikar/sos_alert_system/internal/models"

// DTOToProfileModel преобразует DTO регистрации в доменную модель
func DTOToProfileModel(dto RegisterProfileRequest) *models.Profile {
	return &models.Profile{
		Name:          dto.Name,
		PhoneNumber:   dto.PhoneNumber,
		Email:         dto.Email,
		WalletAddress: dto.WalletAddress,
	}
}

// ModelToProfileResponse преобразует доменную модель в DTO для ответа
func ModelToProfileResponse(model *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:            model.ID,
		Name:          model.Name,
		PhoneNumber:   model.PhoneNumber,
		Email:         model.Email,
		WalletAddress: model.WalletAddress,
		CreatedAt:     model.CreatedAt,
	}
}

// DTOToContactModel преобразует DTO добавления контакта в доменную модель
func DTOToContactModel(dto CreateContactRequest) *models.Contact {
	return &models.Contact{
		Name:               dto.Name,
		PhoneNumber:        dto.PhoneNumber,
		Email:              dto.Email,
		WalletAddress:      dto.WalletAddress,
		IsEmergencyContact: dto.IsEmergencyContact,
	}
}

// DTOToContactPatch преобразует DTO обновления в частичный патч
func DTOToContactPatch(dto UpdateContactRequest) models.ContactPatch {
	return models.ContactPatch{
		Name:               dto.Name,
		PhoneNumber:        dto.PhoneNumber,
		Email:              dto.Email,
		WalletAddress:      dto.WalletAddress,
		IsEmergencyContact: dto.IsEmergencyContact,
	}
}

// ModelToContactResponse преобразует доменную модель в DTO для ответа
func ModelToContactResponse(model *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:                 model.ID,
		Name:               model.Name,
		PhoneNumber:        model.PhoneNumber,
		Email:              model.Email,
		WalletAddress:      model.WalletAddress,
		IsEmergencyContact: model.IsEmergencyContact,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

// ModelsToContactResponses преобразует слайс моделей в слайс DTO
func ModelsToContactResponses(contacts []*models.Contact) []*ContactResponse {
	responses := make([]*ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = ModelToContactResponse(contact)
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель тревоги в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	resp := &AlertResponse{
		ID:        model.ID,
		Timestamp: model.Timestamp,
		Location: LocationResponse{
			Latitude:  model.Location.Latitude,
			Longitude: model.Location.Longitude,
			Address:   model.Location.Address,
		},
		Status:          string(model.Status),
		Notes:           model.Notes,
		VerificationRef: model.VerificationRef,
		CreatedAt:       model.CreatedAt,
	}
	for i := range model.RespondedBy {
		resp.RespondedBy = append(resp.RespondedBy, *ModelToContactResponse(&model.RespondedBy[i]))
	}
	return resp
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// ModelToDispatchResponse преобразует итог рассылки в DTO для ответа
func ModelToDispatchResponse(report *models.DispatchReport) DispatchReportResponse {
	return DispatchReportResponse{
		Eligible:           report.Eligible,
		SuccessCount:       report.SuccessCount,
		FailureCount:       report.FailureCount,
		NoEligibleContacts: report.NoEligibleContacts,
	}
}
